// Package timeutil interpreta las fechas que llegan de la API remota y de Postgres.
//
// Una fecha sin zona es hora de pared del consumidor: se ubica en la zona del
// dashboard, no en UTC. Las fechas con zona conservan su instante.
package timeutil

import (
	"strings"
	"time"
)

// Con zona explícita. Los dos últimos son el formato de texto de timestamptz en Postgres.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
}

// Sin zona: hora local de loc.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Parse devuelve el instante de s. loc nil usa time.Local. Un valor vacío o
// ilegible devuelve el tiempo cero.
func Parse(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}
