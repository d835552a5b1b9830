// Package ports defines the boundary contracts between flows, the sprout
// kernel and its host runtimes.
package ports
