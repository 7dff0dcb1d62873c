// Package netxml reads and writes networks as XML documents.
//
// # Document Shape
//
// Documents carry no text content; everything is an attribute:
//
//	<?xml version="1.0" encoding="UTF-8" ?><!DOCTYPE Network SYSTEM "Network.dtd">
//	<Network links="277" stations="25">
//	  <Station code="55" name="Mexico City">
//	    <Client name="Luis Aragon" phone="48193726"/>
//	  </Station>
//	  ...
//	  <Link stationACode="55" stationBCode="81"/>
//	</Network>
//
// All Station elements precede all Link elements. The root's links and
// stations attributes equal the number of Link and Station children.
//
// # Writing
//
// [Marshal] returns the complete document, preamble included, so callers
// can write it in one piece. The preamble references an external DTD by
// name ([DefaultDTDName] unless overridden); [DTD] returns the matching
// definition so it can be shipped next to the document.
//
// # Reading
//
// [Read] and [ReadFile] decode a document back into a network. They reject
// a foreign root element, summary counts that disagree with the children,
// and non-numeric codes or phones. Semantic checks (link count, duplicate
// links, dangling references) are left to network.Check.
package netxml
