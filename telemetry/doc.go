// Package telemetry instruments triangle estimators with Prometheus metrics
// and provides HTTP handlers for scraping them.
package telemetry
