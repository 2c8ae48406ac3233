// Package placeholder provides the session-owned placeholder table.
//
// Entries map a name to a resolver; resolution happens at expansion
// time, not at registration time, so filters can publish placeholders
// whose value tracks the item currently flowing through the pipeline.
package placeholder
