/*
Package token provides a compact JWT (JSON Web Token) codec: it signs an
arbitrary JSON object into a three-segment token and verifies a token back
into its payload and header.

Basic usage:
```

	signed, err := token.Encode("TOPSECRETTTTT", map[string]interface{}{
	    "iss": "my_issurer",
	    "aud": "World",
	})
	if err != nil {
	    log.Fatal(err)
	}

	decoded, err := token.Decode("TOPSECRETTTTT", signed)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(decoded.Payload["iss"], decoded.Header.Alg())

```
RSA tokens are signed with a private key and verified with the public key,
a certificate, or their PEM encodings:
```

	signed, err := token.Encode(privatePEM, claims, token.WithAlgorithm("RS256"))
	decoded, err := token.Decode(certificatePEM, signed)

```
Extra header fields are merged with WithHeader; "typ" and "alg" are always
set by the codec:
```

	signed, err := token.Encode(secret, claims, token.WithKeyID("TestKeyId"))

```
Every failure is an *Error with a stable Kind. Use errors.Is with the
sentinels (ErrInvalidSignature, ErrUnsupportedAlgorithm, ...) to branch on
the failure category.

The codec performs signature and structural validation only. Claims such as
exp, nbf or aud are returned to the caller untouched.
*/
package token
