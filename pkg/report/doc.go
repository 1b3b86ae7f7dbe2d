/*
Package report defines the reporter sink used across arbor.

Every diagnostic the library produces (builder state changes, leaves found by a
counter, rules identified by a report, children rejected by a leaf) is delivered
as an Event to an injected Reporter instead of being written to the console.
Hosts decide where events go: a Console for humans, a Log for slog, a Recorder
for tests, or several of them at once through Multi.
*/
package report
