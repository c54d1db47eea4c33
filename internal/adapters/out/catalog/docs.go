// Package catalog provides in-memory implementations of the product
// engineering gateways: vehicle configuration and pricing, bills of
// materials, assembly routing, inspection checklists and material
// availability.
//
// The data is static and loaded at start-up. It stands in for the
// configurator and the engineering systems until they are reachable over
// the network.
package catalog
