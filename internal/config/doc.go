// Package config provides the configuration of companyreader: defaults,
// validation, and the optional YAML configuration file that overrides the
// crawl settings.
package config
