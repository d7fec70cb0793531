package swiss

// Config конфигурация Swiss Ephemeris
type Config struct {
	// EphePath путь к файлам эфемерид; пустой путь переключает
	// библиотеку на встроенные эфемериды Moshier
	EphePath string `envconfig:"EPHE_PATH"`
}
