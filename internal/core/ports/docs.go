// Package ports defines the contracts between the manufacturing core and its
// adapters: repositories per aggregate, the processed-event ledger, catalog
// gateways, number and VIN allocation, and event publication.
package ports
