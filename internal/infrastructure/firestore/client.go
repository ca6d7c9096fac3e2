package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// DefaultCredentialsFile ローカル実行時に探す認証ファイル
const DefaultCredentialsFile = "dialect-globe-firestore-key.json"

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient Firestoreクライアントを作成する
// Cloud Runではデフォルト認証、ローカルでは認証ファイルがあればそれを使う
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
	}

	opts := clientOptions()
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("✅ Firestore client initialized for project: %s", projectID)
	return &FirestoreClient{client: client}, nil
}

func clientOptions() []option.ClientOption {
	if os.Getenv("K_SERVICE") != "" {
		log.Printf("☁️ Cloud Run環境: デフォルト認証を使用")
		return nil
	}

	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile == "" {
		credentialsFile = DefaultCredentialsFile
	}
	if _, err := os.Stat(credentialsFile); err != nil {
		log.Printf("⚠️ Credentials file not found: %s, trying with default authentication", credentialsFile)
		return nil
	}

	log.Printf("📄 Using credentials file: %s", credentialsFile)
	return []option.ClientOption{option.WithCredentialsFile(credentialsFile)}
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
