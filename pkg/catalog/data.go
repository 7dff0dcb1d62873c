package catalog

var defaultStations = []string{
	"55-Mexico City",
	"81-Monterrey, Nuevo Leon",
	"33-Guadalajara, Jalisco",
	"656-Ciudad Juarez, Chihuahua",
	"614-Chihuahua, Chihuahua",
	"999-Merida, Yucatan",
	"222-Puebla, Puebla",
	"442-Queretaro, Queretaro",
	"449-Aguascalientes, Aguascalientes",
	"664-Tijuana, Baja California",
	"844-Saltillo, Coahuila",
	"686-Mexicali, Baja California",
	"667-Culiacan, Sinaloa",
	"722-Toluca, Mexico",
	"998-Cancun, Quintana Roo",
	"871-Torreon, Coahuila",
	"744-Acapulco, Guerrero",
	"444-San Luis Potosi, San Luis Potosi",
	"833-Tampico, Tamaulipas",
	"477-Leon, Guanjuato",
	"961-Tuxtla Gutierrez, Chiapas",
	"662-Hermosillo, Sonora",
	"229-Veracruz, Veracruz",
	"443-Morelia, Michoacan",
	"951-Oaxaca, Oaxaca",
}

var defaultFirstNames = []string{
	"Luis", "Daniel", "Carlos", "Manuel", "Kai", "Jorge", "Liz",
	"Ignacio", "Maria", "Miguel", "Jose", "Antonio", "Alejandro", "Patricia",
	"Josefina", "Rosa", "Alicia", "Francisco", "Margarita", "Alejandra", "Elizabeth",
}

var defaultLastNames = []string{
	"Rodriguez", "Hernandez", "Garcia", "Martinez", "Gonzalez",
	"Lopez", "Perez", "Sanchez", "Kawasaki", "Aragon",
	"Bermudez", "Ueda", "Ramirez", "Flores", "Arguello",
}
