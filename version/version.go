package version

// Version is the current release of NaturalCommitLint.
const Version = "0.1.0"
