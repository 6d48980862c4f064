// Package storage envia documentos ao bucket do Supabase Storage
package storage

import (
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

// Client encapsula o cliente do Supabase Storage para um bucket fixo
type Client struct {
	client *storage_go.Client
	bucket string
}

// New cria o cliente apontando para o endpoint de storage do projeto
func New(projectURL, serviceKey, bucket string) *Client {
	return &Client{
		client: storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil),
		bucket: bucket,
	}
}

// UploadPDF envia o PDF para o caminho informado e retorna a URL pública
func (c *Client) UploadPDF(path string, data io.Reader) (string, error) {
	contentType := "application/pdf"
	upsert := true

	_, err := c.client.UploadFile(c.bucket, path, data, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("falha ao enviar arquivo ao bucket %s: %w", c.bucket, err)
	}

	response := c.client.GetPublicUrl(c.bucket, path)
	return response.SignedURL, nil
}
