/*
Package hostlog provides the shared runtime configuration for guest code that
logs through a host runtime.

The package exposes RuntimeConfig, which is shared by the logging client and
its host backends, and the Platform enumeration the host reports. Restricted
platforms cap tag and line lengths; the logging package applies those limits.
DefaultNamespace is used when a namespace is not explicitly provided.
*/
package hostlog
