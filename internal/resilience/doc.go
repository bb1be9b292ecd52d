// Package resilience groups the fault-tolerance helpers around the database:
// circuitbreaker trips on a failing Postgres and retry waits it out at startup.
package resilience
