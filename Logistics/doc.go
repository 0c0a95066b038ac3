// Package Logistics tracks packages moving between warehouses on top of Dimensions.
//
// Every event is one record of an arena. The record sits in the package's own list, which keeps all of the package's
// events, and in the list of each customer involved, which keeps per package the first event and the latest one. A
// query prints the list it names: its own log line, the list size, then the log line of every record in order.
package Logistics
