// Package services implements the core orchestration logic behind the
// driving ports: query variant generation, the bounded parallel fan-out
// against the search backend, and best-response selection.
package services
