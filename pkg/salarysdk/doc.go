/*
Package salarysdk provides a Go client for the salary gateway.

The gateway exposes two operations. Login exchanges a login and password for
a token, and Salary returns the salary record of a login when presented with
that token:

	client := salarysdk.NewClient("http://localhost:8000")

	token, err := client.Login(ctx, "john", "pass")
	if errors.Is(err, salarysdk.ErrNoResult) {
		// wrong login or password
	}

	info, err := client.Salary(ctx, "john", token)

The gateway never says why a call failed. A null body is reported as
ErrNoResult whatever the cause, so unknown logins and wrong passwords are
indistinguishable to callers. Transport failures and unexpected status codes
are returned as *StatusError or wrapped errors.

Health endpoints are available through GetLiveness and GetReadiness.
*/
package salarysdk
