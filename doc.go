// Package disposable contains the Tracker, which allows an object to
// accumulate cleanup actions over its life-time and guarantees they run
// exactly once, in reverse registration order, when the object is disposed.
//
// The idea is that types owning resources like file handles, connections or
// temporary folders often acquire them at scattered points during their
// life-time, but must release all of them, in the right order, at a single
// disposal point. Hand-rolling this in every type easily gets complicated,
// especially once a cleanup action can itself trigger disposal again. So to
// simplify it, owning types embed a Tracker (or hold one as a field and
// delegate to it), register cleanup as resources are acquired, and expose
// Tracker.Dispose as their own disposal entry point.
//
// The Tracker is designed for a single logical owner. It does no internal
// locking; the only concurrency concern it handles is reentrancy, where a
// cleanup action calls back into Dispose on the same call stack.
package disposable
