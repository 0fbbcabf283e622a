// Package datevalue converts raw date inputs into spreadsheet day serials.
//
// Adapters:
//   - Resolver: driven.DateValueResolver for numbers, strings and time values
//   - Flattener: driven.ArgumentFlattener for nested holiday arguments
package datevalue
