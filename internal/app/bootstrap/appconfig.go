// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent app-level
// configuration, not WAFFLE core configuration: core settings like HTTP
// ports, TLS, logging level, and CORS live in config.CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Credential scheme for stored passwords: "plain" or "bcrypt".
	// "plain" keeps compatibility with data written by earlier deployments.
	CredentialScheme string

	// Email/SMTP configuration for recovery-code delivery
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty disables auth)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@example.com)
	MailFromName string // From display name

	// Base URL for links in outgoing email
	BaseURL string // e.g., "https://example.com" or "http://localhost:8080"

	// Admin seeding configuration
	SeedAdminEmail    string // Email of the admin account to create on startup (if set)
	SeedAdminUsername string // Username of the admin account to create on startup
	SeedAdminPassword string // Password of the admin account to create on startup
}
