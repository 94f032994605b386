/*
Package ports defines the boundary interfaces of the Chalk core:
loaders for authored content and stores for presenter sessions.

Adapters in pkg/adapters implement these interfaces; the contract
helpers here let every adapter run the same compliance suite.
*/
package ports
