package version

// Version is the arrseg release version, surfaced via --version and the
// output BAM @PG line.
const Version = "0.3.0"
