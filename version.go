package chalk

// Version is the current Chalk release.
const Version = "0.3.0"
