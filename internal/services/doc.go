// Package services implements the auth and task contracts on top of the
// stores. Every operation first waits the configured simulated latency,
// honouring context cancellation.
package services
