// Package resulttable flattens an event sequence into the row-per-event
// table external adapters consume (core spec §4.6).
package resulttable
