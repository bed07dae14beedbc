/*
Package ddns keeps a Route 53 A record pointed at the machine it runs on.

Usage will always start with [ddns.New],
which returns an [Updater].
New requires a [Provider] implementation, normally registered with [UsingRoute53].
The address comes from a [Resolver]; by default the outbound interface address is used when it is public,
and an external "what is my IP" service is asked otherwise.
Unless forced, an update is skipped when a [Checker] finds that the name already resolves to the address.

Hosted zones are found with [DomainFromFQDN],
which knows only a short list of two-label public suffixes such as "co.uk".
*/
package ddns
