package sprout

// Version is the current sprout release.
const Version = "0.1.0"
