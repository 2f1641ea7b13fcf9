// Package snapshot persists container state as a single framed file.
//
// A snapshot holds an ordered list of named sections. Each section is the
// binary form of one container (or any other Section implementation),
// chunked into compressed blocks. The file carries a self-describing
// header (format version, value codec, compression type) and a trailing
// CRC-32 checksum, and file writes replace the target atomically.
//
//	bundle := snapshot.NewBundle().
//	    Add("positions", snapshot.Bind(codec.JSON{}, positions)).
//	    Add("velocities", snapshot.Bind(codec.JSON{}, velocities))
//
//	if err := snapshot.SaveFile(ctx, "state.gdx", bundle); err != nil {
//	    ...
//	}
//
// Sections are encoded concurrently on save: every section is handed to
// exactly one goroutine, so the no-shared-owner rule of the containers is
// preserved. Loading dispatches sections to the bundle in file order; a
// load error part-way through leaves the sections decoded before it in
// their loaded state.
package snapshot
