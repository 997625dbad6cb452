/*
Package tfhecore roots a torus-based fully homomorphic encryption core.

The module implements four layers, leaves first:

  - ring: fixed-precision arithmetic on the torus T = R/Z (q = 2^64) and the
    negacyclic torus-polynomial ring T[X]/(X^N+1) built on top of it.
  - utils/sampling: a seedable, keyed pseudo-random source used by every
    sampler in the module.
  - lwe: TLWE ciphertexts (secret-key generation, encryption, decryption,
    and the additive/scalar-multiplicative linear operators).
  - rlwe: TRLWE ciphertexts, the ring-LWE analog of lwe.

There is no higher-level construction here: no bootstrapping, no
key-switching, no gate evaluation, no serialization. Those are left to
callers.
*/
package tfhecore
