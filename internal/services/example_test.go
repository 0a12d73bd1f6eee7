package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"sui-balance-api/internal/config"
	"sui-balance-api/internal/services"
)

func ExampleSuiClient_GetCoinMetadata() {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":{"decimals":9,"symbol":"SUI"}}`)
	}))
	defer node.Close()

	client, err := services.NewSuiClient(context.Background(), &config.RPCConfig{Endpoint: node.URL})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer client.Close()

	payload, err := client.GetCoinMetadata(context.Background(), "0x2::sui::SUI")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(payload))
	// Output: {"decimals":9,"symbol":"SUI"}
}
