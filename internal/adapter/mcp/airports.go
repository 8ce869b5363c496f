package mcp

// AirportsResourceURI is the URI of the static airport reference resource.
const AirportsResourceURI = "travel://airports"

// Airport is one entry of the static airport reference list.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Airports is the reference list served at AirportsResourceURI. It is a
// convenience for clients composing flight queries, not an exhaustive
// catalog; searches accept any valid IATA code.
var Airports = []Airport{
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States"},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "United States"},
	{Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "United States"},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States"},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States"},
	{Code: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States"},
	{Code: "MCO", Name: "Orlando International Airport", City: "Orlando", Country: "United States"},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "United States"},
	{Code: "BOS", Name: "Logan International Airport", City: "Boston", Country: "United States"},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},
	{Code: "MEX", Name: "Mexico City International Airport", City: "Mexico City", Country: "Mexico"},
	{Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil"},
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "Spain"},
	{Code: "BCN", Name: "Josep Tarradellas Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain"},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy"},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland"},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	{Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar"},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	{Code: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia"},
	{Code: "DPS", Name: "Ngurah Rai International Airport", City: "Denpasar", Country: "Indonesia"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	{Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{Code: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand"},
	{Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa"},
	{Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt"},
}
