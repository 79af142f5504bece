package main

import "github.com/ipfs/go-cid"

func parseCIDArg(s string) (cid.Cid, error) {
	return cid.Decode(s)
}
