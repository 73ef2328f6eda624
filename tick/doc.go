// Package tick is a cooperative single-threaded scheduler: subscribers
// Attach a callback once and receive a Handle; Update invokes every
// attached callback exactly once per call, in attach order, passing the
// elapsed time. Attach/Detach/RequestDetach/Update are safe to call
// concurrently; callback execution itself happens outside any lock so a
// callback is free to Attach, Detach, or RequestDetach — including
// detaching itself — without deadlocking.
//
// Grounded on original_source/byul/byul_tick/byul_tick.cpp. The original's
// tick_func+void* context pair (matched by pointer identity for
// Detach/RequestDetach) is replaced by an explicit integer Handle, since
// Go closures aren't comparable the way C function pointers are; a
// returned Handle is the idiomatic Go equivalent of "the token you got
// back from subscribing."
package tick
