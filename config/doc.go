// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration
// structure covering the population data file, the draw source (simulation,
// log scraping or subprocess capture), the analysis thresholds and logging.
package config
