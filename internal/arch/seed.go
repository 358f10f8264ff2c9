package arch

// Seed data for the movie ticket booking reference architecture. Accessors
// return copies so callers cannot mutate the canonical tables.

var systemNodes = []ServiceNode{
	{ID: "client", Name: "Web/Mobile Client", Kind: KindExternal, Description: "User interface for browsing and booking"},
	{ID: "lb", Name: "Load Balancer", Kind: KindGateway, Description: "NGINX / AWS ALB for traffic distribution"},
	{ID: "gateway", Name: "API Gateway", Kind: KindGateway, Description: "Authentication, Rate Limiting, Logging"},
	{ID: "user_svc", Name: "User Service", Kind: KindService, Description: "Profile, Auth, Preferences", Technologies: []string{"Node.js", "Go"}},
	{ID: "movie_svc", Name: "Movie Catalog Service", Kind: KindService, Description: "Search movies, theaters, and availability", Technologies: []string{"ElasticSearch", "Java"}},
	{ID: "booking_svc", Name: "Booking Service", Kind: KindService, Description: "Locking seats, creating reservations", Technologies: []string{"Python", "Redis"}},
	{ID: "payment_svc", Name: "Payment Service", Kind: KindService, Description: "Gateway integration, Ledger", Technologies: []string{"Go", "Stripe API"}},
	{ID: "notif_svc", Name: "Notification Service", Kind: KindService, Description: "SMS, Email, Push Notifications", Technologies: []string{"Kafka", "Twilio"}},
	{ID: "main_db", Name: "Transactional DB", Kind: KindDatabase, Description: "PostgreSQL - Consistency for bookings"},
	{ID: "cache", Name: "Redis Cache", Kind: KindDatabase, Description: "Session data & Seat Locking"},
	{ID: "search_db", Name: "ElasticSearch", Kind: KindDatabase, Description: "Fast movie/theater searching"},
}

var systemConnections = []Connection{
	{From: "client", To: "lb", Label: "HTTPS"},
	{From: "lb", To: "gateway", Label: "Internal"},
	{From: "gateway", To: "user_svc", Label: "gRPC"},
	{From: "gateway", To: "movie_svc", Label: "gRPC"},
	{From: "gateway", To: "booking_svc", Label: "gRPC"},
	{From: "movie_svc", To: "search_db", Label: "Query"},
	{From: "booking_svc", To: "cache", Label: "Distributed Lock"},
	{From: "booking_svc", To: "main_db", Label: "ACID Txn"},
	{From: "booking_svc", To: "payment_svc", Label: "Async/Sync"},
	{From: "payment_svc", To: "notif_svc", Label: "Event (Kafka)"},
}

var schemas = []SchemaTable{
	{
		Name: "Cities/Theaters",
		Columns: []Column{
			{Name: "city_id", Type: "UUID", Constraints: "PK"},
			{Name: "name", Type: "VARCHAR(100)"},
			{Name: "theater_id", Type: "UUID", Constraints: "FK"},
		},
	},
	{
		Name: "Movies/Shows",
		Columns: []Column{
			{Name: "movie_id", Type: "UUID", Constraints: "PK"},
			{Name: "title", Type: "VARCHAR(255)"},
			{Name: "show_id", Type: "UUID", Constraints: "FK"},
			{Name: "hall_id", Type: "UUID", Constraints: "FK"},
			{Name: "start_time", Type: "TIMESTAMP"},
		},
	},
	{
		Name: "Bookings",
		Columns: []Column{
			{Name: "booking_id", Type: "UUID", Constraints: "PK"},
			{Name: "user_id", Type: "UUID", Constraints: "FK"},
			{Name: "show_id", Type: "UUID", Constraints: "FK"},
			{Name: "status", Type: "ENUM", Constraints: "PENDING, PAID, EXPIRED"},
			{Name: "seats", Type: "JSONB", Constraints: "Array of IDs"},
		},
	},
	{
		Name: "Show_Seats (Critical)",
		Columns: []Column{
			{Name: "id", Type: "UUID", Constraints: "PK"},
			{Name: "show_id", Type: "UUID", Constraints: "FK"},
			{Name: "seat_number", Type: "VARCHAR(10)"},
			{Name: "status", Type: "INT", Constraints: "0: Available, 1: Locked, 2: Booked"},
			{Name: "version", Type: "INT", Constraints: "Optimistic Locking"},
		},
	},
}

var approachSteps = []ApproachStep{
	{Title: "1. Requirement Clarifications", Content: "Functional: Search, Select Seat, Booking, Notification. Non-Functional: High Availability, Consistency (No Double Booking), Scale (Millions of users during blockbusters)."},
	{Title: "2. High Level Design", Content: "Microservices architecture to scale components independently. API Gateway for routing. Microservices communicating via gRPC for performance."},
	{Title: "3. Database Choice", Content: "PostgreSQL for ACID compliance in bookings. Redis for distributed locking during the 10-minute seat hold window."},
	{Title: "4. Scaling Strategy", Content: "Horizontal scaling for search services. Read replicas for DB. CDN for movie posters. Kafka for asynchronous notifications."},
	{Title: "5. Handling Concurrency", Content: "Distributed locking (Redis Redlock) or Optimistic concurrency control (versioning) in DB to prevent two people from booking the same seat."},
}

var suggestedQuestions = []string{
	"How to handle double booking?",
	"Explain the Redis lock strategy",
	"What if the payment fails?",
}

// SystemNodes returns the fixed node list of the reference architecture.
func SystemNodes() []ServiceNode {
	out := make([]ServiceNode, len(systemNodes))
	copy(out, systemNodes)
	return out
}

// SystemConnections returns the fixed edge list of the reference architecture.
func SystemConnections() []Connection {
	out := make([]Connection, len(systemConnections))
	copy(out, systemConnections)
	return out
}

// Schemas returns the relational schema tables backing the booking flow.
func Schemas() []SchemaTable {
	out := make([]SchemaTable, len(schemas))
	copy(out, schemas)
	return out
}

// ApproachSteps returns the design methodology walkthrough.
func ApproachSteps() []ApproachStep {
	out := make([]ApproachStep, len(approachSteps))
	copy(out, approachSteps)
	return out
}

// SuggestedQuestions returns starter prompts for the assistant panel.
func SuggestedQuestions() []string {
	out := make([]string, len(suggestedQuestions))
	copy(out, suggestedQuestions)
	return out
}
