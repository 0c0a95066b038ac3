/*
Package Dimensions implements records that live in many doubly linked lists at once.

A record carries a payload and a directory mapping dimension names to the record's own
previous/next links in that dimension. A List is a head/tail/size handle on one ordered
sequence of one dimension; several Lists may use the same dimension name as long as they
never share a record. Because every record finds its links for any dimension in
constant time, a record can be cut out of the middle of a list and a newer record
appended, or a record replaced in place, without walking the list.

# Ownership
Records are owned by an Arena and referred to by Ref handles, never by pointers; Nil is
the absent handle. Every record is also appended to the arena's lifecycle List when it is
created, and Teardown walks that list to release each record exactly once.

# Relocation
Relocate keeps, per owning entity, a permanent first entry (the anchor) plus one entry
tracking the entity's latest state. The first two occurrences of an entity are
appended. Every later occurrence supersedes the previous one: in place when the previous
one is the tail, otherwise by unlinking it and appending the new record. AppendOnly is
the plain rule for lists that keep every entry.

Links must only be changed through Relocate and AppendOnly. An Arena is not safe for
concurrent use; callers that share one must serialize every call on it.
*/
package Dimensions
