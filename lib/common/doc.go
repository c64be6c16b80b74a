// Package common provides the pieces shared by the library packages and the
// command line front end.
//
// Key Components:
//
//   - Logger: Custom logging implementation that plugs into dragonboat's
//     logger registry (logger.GetLogger / logger.SetLoggerFactory). Library
//     packages obtain a named logger at package level; InitLoggers installs
//     the lsm format and sets the level of every lsm logger in one place.
//
//   - Config: runtime settings (collection file, format, log level and the
//     front end switches), with defaults and validation.
package common
