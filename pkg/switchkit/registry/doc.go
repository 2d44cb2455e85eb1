// Package registry provides a generic thread-safe registry for values
// indexed by key.
//
// switchkit instantiates it as Registry[string, State]: the process-wide
// mapping from switch identifier to logical on/off state. The registry is
// created empty, seeded when a controller binds, and overwritten on each
// observed change event. Entries are never removed by the controllers
// themselves.
//
// # Basic Usage
//
//	states := registry.New[string, switchkit.State]()
//	states.Set("darkmode", switchkit.StateOff)
//
//	state, ok := states.Get("darkmode")
//	if ok {
//	    fmt.Println(state) // Output: off
//	}
//
// # Thread Safety
//
// All methods are safe for concurrent use. Range and Snapshot operate on a
// copy of the entries, so the registry may be mutated during iteration
// without affecting the iteration itself.
package registry
