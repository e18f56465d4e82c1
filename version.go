package typedcoll

// Version is the current release of the module and the typedcoll CLI.
const Version = "0.4.0"
