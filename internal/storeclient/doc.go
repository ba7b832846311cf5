// Package storeclient is the HTTP+JSON client for the hosted backend that
// owns lots, users and the prize sink (a mokky.dev project).
//
// Endpoints used:
//   - GET    /lot, /lot/{id}
//   - POST   /lot
//   - PATCH  /lot/{id}          {currentPrice, bets} or {issued: true}
//   - GET    /user/{id}
//   - GET    /prizeSink, POST /prizeSink
//
// Requests are never retried; callers decide whether to try again.
package storeclient
