// Package config loads the optional idnls configuration file.
//
// The file lives in the platform config directory (XDG on unix) and carries
// defaults for the client group, discovery timeout, provider selection and
// log level. A missing file means defaults; flags always win over the file.
package config
