// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"github.com/ecodeclub/booknest/internal/payment/internal/service"
	"github.com/ecodeclub/booknest/internal/payment/internal/service/razorpay"
	"github.com/gotomicro/ego/core/econf"
	razorpaygo "github.com/razorpay/razorpay-go"
)

func InitRazorpayClient(cfg RazorpayConfig) *razorpaygo.Client {
	return razorpaygo.NewClient(cfg.KeyID, cfg.Secret)
}

func InitGatewayAPIService(cli *razorpaygo.Client) razorpay.GatewayAPIService {
	return razorpay.NewGatewayAPIService(cli)
}

func InitServiceConfig(cfg RazorpayConfig) service.Config {
	return service.Config{
		KeyID:    cfg.KeyID,
		Secret:   cfg.Secret,
		Currency: cfg.Currency,
	}
}

func InitRazorpayConfig() RazorpayConfig {
	var cfg RazorpayConfig
	err := econf.UnmarshalKey("razorpay", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	return cfg
}

type RazorpayConfig struct {
	KeyID    string `yaml:"keyId"`
	Secret   string `yaml:"keySecret"`
	Currency string `yaml:"currency"`
}
