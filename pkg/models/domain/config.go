package domain

// AppConfig holds the optional configuration file settings. Zero values fall
// back to the built-in defaults (path probing, localhost server, top 5).
type AppConfig struct {
	DataPath     string
	ServerAddr   string
	TopCustomers int
}
