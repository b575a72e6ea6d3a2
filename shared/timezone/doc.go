// Package timezone holds the application clock. APP_TIMEZONE takes an IANA name such as
// "Asia/Jakarta" and is read when the package is first imported; booking dates and session
// timestamps are produced in that zone.
package timezone
