/*
Package logging offers a logging facade for guest code whose log output is
owned by a host runtime.

A Client tags every entry with the simple name of the calling type, renders
attached errors as stack traces, and forwards the result to one of the
host's three severity-levelled writes (Log, Debug, Error). On restricted
platforms (see hostlog.Platform.Restricted) tags are capped at
DefaultMaxTagLength characters and messages longer than DefaultMaxLineLength
bytes are split into line-preserving chunks.

Errors caused by a failed host name lookup (*net.DNSError) render as an empty
stack trace, so a device without connectivity does not flood the log.

The host is bound once, when the Client is built. By default the Client
talks to the host over waPC; tests can inject a Host directly (see the mock
subpackage) or a HostCall (see hostmock).

	log, err := logging.New(logging.Config{})
	if err != nil {
		return err
	}
	log.Debug("loading level")
	log.ErrorWith("asset missing", err)

The package-level functions use a process-wide Client, bound with SetDefault
or lazily on first use.
*/
package logging
