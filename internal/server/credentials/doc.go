// Package credentials hashes and verifies user passwords.
//
// Two algorithms are supported: bcrypt (the default) and argon2id encoded in
// PHC string format. The algorithm used for verification is picked from the
// stored secret, so existing hashes keep working after the configured
// algorithm changes.
//
// All work goes through a Manager, which bounds how many hash operations may
// run at once. Plaintext never leaves this package except as the caller's
// own argument.
package credentials
