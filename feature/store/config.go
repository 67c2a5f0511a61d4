package store

// Drivers selectable via configuration.
const (
	DriverCSV    = "csv"
	DriverMySQL  = "mysql"
	DriverObject = "object"
)

// Config holds configuration for the persisted table store.
type Config struct {
	// Driver selects the store backend (csv, mysql, object).
	Driver string `mapstructure:"driver" default:"csv"`
	// Path is the CSV file path used by the csv driver.
	Path string `mapstructure:"path" default:"corporate_web.csv"`
	// Object is the object name used by the object driver.
	Object string `mapstructure:"object" default:"tables/corporate_web.csv"`
}

// IsValidDriver checks if the configured driver is valid.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverCSV, DriverMySQL, DriverObject:
		return true
	default:
		return false
	}
}
