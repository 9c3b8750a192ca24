// Package config loads triest settings through viper and builds the zerolog
// logger the commands share.
package config
