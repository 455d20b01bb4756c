package settings

// Link wires an ordered list of files into an override chain.
//
// files[0] is the most authoritative file; increasing index means less
// authoritative. Each file's Next is pointed at its more authoritative
// neighbor, so walking Next from the last element moves toward files[0].
// The builder only ever links toward earlier elements, which keeps the chain
// acyclic by construction.
//
// Linking zero or one files is a no-op.
func Link(files []*File) {
	for i := 1; i < len(files); i++ {
		files[i].next = files[i-1]
	}
}
