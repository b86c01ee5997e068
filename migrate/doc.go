// Package migrate upgrades stored article metadata written by earlier
// versions of the pipeline. Old records carried categories as JSON
// score arrays or comma-joined lists; migration collapses each to a
// single label and stamps the schema version so future runs skip it.
package migrate
