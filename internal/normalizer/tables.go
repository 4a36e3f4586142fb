package normalizer

import "github.com/chandhuDev/JobLens/internal/models"

// junkSkills pollute skill-frequency aggregates: soft skills, places and
// employment types that job boards put into the skills field.
var junkSkills = map[string]struct{}{}

func init() {
	for _, s := range []string{
		"gymnastic", "driving", "cleaning", "music", "unknown", "communication skills",
		"good communication", "written communication", "verbal communication",
		"team player", "interpersonal skills", "indian cinema", "sports", "swimming",
		"soft skills", "fluent english", "ms office", "microsoft office", "communication",
		"leadership", "management", "problem solving", "analytical skills", "time management",
		"presentation skills", "negotiation", "teamwork", "adaptability",
		"maharashtra", "karnataka", "uttar pradesh", "tamil nadu", "telangana", "andhra pradesh",
		"west bengal", "gujarat", "rajasthan", "kerala", "haryana", "punjab", "madhya pradesh",
		"delhi", "new delhi", "mumbai", "bangalore", "bengaluru", "hyderabad", "chennai", "pune",
		"noida", "gurgaon", "gurugram", "kolkata", "ahmedabad", "india", "usa", "united states",
		"uk", "london", "dubai", "remote", "work from home", "wfh", "hybrid", "onsite",
		"full time", "part time", "contract", "permanent", "temporary", "internship", "fresher",
	} {
		junkSkills[s] = struct{}{}
	}
}

// IsJunkSkill reports whether s (already lower-cased) is excluded from skills.
func IsJunkSkill(s string) bool {
	_, ok := junkSkills[s]
	return ok
}

// cityAliases maps title-cased first location segments to their canonical
// city. Bare country names carry no city.
var cityAliases = map[string]string{
	"Bangalore": "Bengaluru",
	"Gurgaon":   "Gurugram",
	"Bombay":    "Mumbai",
	"Us":        "Remote",
	"India":     "Remote",
}

// indiaCityTokens force the country to India when found in a location.
var indiaCityTokens = []string{"bengaluru", "mumbai", "delhi", "pune"}

// cityCoords is keyed by lower-cased city name.
var cityCoords = map[string]models.Coordinates{
	"bengaluru":     {Lat: 12.9716, Lon: 77.5946},
	"bangalore":     {Lat: 12.9716, Lon: 77.5946},
	"hyderabad":     {Lat: 17.3850, Lon: 78.4867},
	"secunderabad":  {Lat: 17.4399, Lon: 78.4983},
	"chennai":       {Lat: 13.0827, Lon: 80.2707},
	"mumbai":        {Lat: 19.0760, Lon: 72.8777},
	"pune":          {Lat: 18.5204, Lon: 73.8567},
	"delhi":         {Lat: 28.7041, Lon: 77.1025},
	"new delhi":     {Lat: 28.6139, Lon: 77.2090},
	"noida":         {Lat: 28.5355, Lon: 77.3910},
	"gurgaon":       {Lat: 28.4595, Lon: 77.0266},
	"gurugram":      {Lat: 28.4595, Lon: 77.0266},
	"kolkata":       {Lat: 22.5726, Lon: 88.3639},
	"ahmedabad":     {Lat: 23.0225, Lon: 72.5714},
	"jaipur":        {Lat: 26.9124, Lon: 75.7873},
	"chandigarh":    {Lat: 30.7333, Lon: 76.7794},
	"indore":        {Lat: 22.7196, Lon: 75.8577},
	"kochi":         {Lat: 9.9312, Lon: 76.2673},
	"trivandrum":    {Lat: 8.5241, Lon: 76.9366},
	"coimbatore":    {Lat: 11.0168, Lon: 76.9558},
	"lucknow":       {Lat: 26.8467, Lon: 80.9462},
	"nagpur":        {Lat: 21.1458, Lon: 79.0882},
	"surat":         {Lat: 21.1702, Lon: 72.8311},
	"bhopal":        {Lat: 23.2599, Lon: 77.4126},
	"patna":         {Lat: 25.5941, Lon: 85.1376},
	"kanpur":        {Lat: 26.4499, Lon: 80.3319},
	"thane":         {Lat: 19.2183, Lon: 72.9781},
	"navi mumbai":   {Lat: 19.0330, Lon: 73.0297},
	"london":        {Lat: 51.5074, Lon: -0.1278},
	"new york":      {Lat: 40.7128, Lon: -74.0060},
	"san francisco": {Lat: 37.7749, Lon: -122.4194},
	"berlin":        {Lat: 52.5200, Lon: 13.4050},
	"singapore":     {Lat: 1.3521, Lon: 103.8198},
	"dubai":         {Lat: 25.2048, Lon: 55.2708},
	"sydney":        {Lat: -33.8688, Lon: 151.2093},
	"tokyo":         {Lat: 35.6762, Lon: 139.6503},
	"paris":         {Lat: 48.8566, Lon: 2.3522},
	"toronto":       {Lat: 43.6510, Lon: -79.3470},
	"amsterdam":     {Lat: 52.3676, Lon: 4.9041},
	"madrid":        {Lat: 40.4168, Lon: -3.7038},
	"los angeles":   {Lat: 34.0522, Lon: -118.2437},
	"chicago":       {Lat: 41.8781, Lon: -87.6298},
	"austin":        {Lat: 30.2672, Lon: -97.7431},
	"seattle":       {Lat: 47.6062, Lon: -122.3321},
}

// CityCoordinates looks up the static table, case-insensitively.
func CityCoordinates(city string) (models.Coordinates, bool) {
	c, ok := cityCoords[lower(city)]
	return c, ok
}
