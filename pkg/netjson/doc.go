// Package netjson provides JSON import and export for generated networks.
//
// The JSON form carries the same data as the XML document, for tools that
// prefer JSON:
//
//	{
//	  "stations": [
//	    {"code": "55", "name": "Mexico City", "clients": [{"name": "Kai Ueda", "phone": "48193726"}]}
//	  ],
//	  "links": [
//	    {"a": "55", "b": "81"}
//	  ]
//	}
//
// Summary counts are implied by the array lengths. [ReadJSON] rejects
// unknown fields so that a misspelled key fails loudly instead of producing
// an empty network.
package netjson
