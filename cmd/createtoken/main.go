package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tempora.io/tempora/web/middlewares"
)

func main() {
	oid := flag.String("oid", "dev-user", "stable user id claim")
	email := flag.String("email", "dev@example.com", "preferred_username claim")
	write := flag.Bool("write", true, "grant the read-write scope instead of read-only")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret, err := base64.StdEncoding.DecodeString(os.Getenv("TEMPORA_SIGNING_SECRET"))
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	scopes := []string{middlewares.ScopeRead}
	if *write {
		scopes = []string{middlewares.ScopeReadWrite}
	}

	token, err := middlewares.CreateJWT(secret, *oid, *email, scopes, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
