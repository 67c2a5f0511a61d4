// Package requestid provides a Fiber middleware that tags every request
// with a unique identifier for log correlation across the reporting API.
package requestid
