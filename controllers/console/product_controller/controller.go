package product_controller

import (
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

var client *upstream.Client

func Init(c *upstream.Client) {
	client = c
}
