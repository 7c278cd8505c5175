package navstack

// Version is the library version, overridable at link time with
// -ldflags "-X github.com/aretw0/navstack.Version=...".
var Version = "0.3.0"
