// Package config loads msggen settings from a TOML file.
//
//	package = "basicconnect"
//	output = "basicconnect_gen.go"
//	schemas = ["basic-connect.yaml", "sms.yaml"]
//	generate-setters = true
//
// Command-line flags override what the file sets.
package config
