/*
Package algorithms implements the JWS signing algorithms supported by the token codec.

The package provides a fixed registry of algorithms and their implementations.
The registry is built once at package initialization and cannot be extended
at runtime; adding an algorithm means adding an entry to the registry table.

Supported Algorithms:
- HMAC
  - HS256 (HMAC + SHA-256)
  - HS384 (HMAC + SHA-384)
  - HS512 (HMAC + SHA-512)

- RSA PKCS1v15
  - RS256 (RSA + SHA-256)

The unsecured "none" algorithm is deliberately absent, so Get rejects it
like any other unknown name.

Each algorithm implementation:
- Computes raw signature bytes over a signing input
- Verifies signatures (HMAC comparison is constant time)
- Coerces and validates key material for its family
*/
package algorithms
