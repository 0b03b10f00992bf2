package marker

const (
	sprintColor = "#7aa2f7"
	issueColor  = "#f0883e"
)

// Samples returns the dashboard's demo sprint and issue locations
func Samples() []Marker {
	return []Marker{
		{Lat: 37.5665, Lng: 126.9780, Color: sprintColor, Size: 8, Type: TypeSprint,
			Title: "Q1 Sprint Planning", Location: "Seoul, South Korea", Date: "2024-01-15",
			Description: "Quarterly sprint planning session for Q1 2024"},
		{Lat: 40.7128, Lng: -74.0060, Color: sprintColor, Size: 8, Type: TypeSprint,
			Title: "Product Launch Sprint", Location: "New York, USA", Date: "2024-02-20",
			Description: "Sprint focused on launching the new product features"},
		{Lat: 51.5074, Lng: -0.1278, Color: sprintColor, Size: 8, Type: TypeSprint,
			Title: "Infrastructure Sprint", Location: "London, UK", Date: "2024-03-10",
			Description: "Infrastructure improvements and optimization sprint"},
		{Lat: 35.6762, Lng: 139.6503, Color: sprintColor, Size: 8, Type: TypeSprint,
			Title: "Mobile App Sprint", Location: "Tokyo, Japan", Date: "2024-04-05",
			Description: "Mobile application development and enhancement sprint"},
		{Lat: 37.7749, Lng: -122.4194, Color: issueColor, Size: 6, Type: TypeIssue,
			Title: "Authentication Bug", Location: "San Francisco, USA", Date: "2024-01-22",
			Description: "Critical authentication issue reported by users"},
		{Lat: 52.5200, Lng: 13.4050, Color: issueColor, Size: 6, Type: TypeIssue,
			Title: "Performance Issue", Location: "Berlin, Germany", Date: "2024-02-14",
			Description: "Performance degradation in production environment"},
		{Lat: -33.8688, Lng: 151.2093, Color: issueColor, Size: 6, Type: TypeIssue,
			Title: "Database Connection Error", Location: "Sydney, Australia", Date: "2024-03-18",
			Description: "Intermittent database connection failures"},
	}
}
