// Package mojangapi resolves Minecraft player identities through Mojang's
// public REST API: display name to account UUID and the current display
// name for a UUID.
//
// Each lookup is a single stateless round trip. A Client holds no mutable
// state and may be shared freely between goroutines.
package mojangapi
